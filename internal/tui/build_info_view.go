// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-echo-feed/models"
)

// renderBuildInfoWindow shows build metadata next to the session the
// participant is playing with.
func renderBuildInfoWindow(info models.AppBuildInfo, view models.RoundView) string {
	var b strings.Builder

	b.WriteString("Название приложения: go-echo-feed\n")
	fmt.Fprintf(&b, "Версия: %s\n", info.BuildVersion())
	fmt.Fprintf(&b, "Дата сборки: %s\n", info.BuildDate())
	fmt.Fprintf(&b, "Коммит: %s\n\n", info.BuildCommit())

	fmt.Fprintf(&b, "Ключ: %s\n", valueOrDash(view.APIKey))
	if view.LastSubmittedStep >= 0 {
		fmt.Fprintf(&b, "Последняя отправка: шаг %d", view.LastSubmittedStep)
	} else {
		b.WriteString("Последняя отправка: -")
	}

	return renderPage("ИНФОРМАЦИЯ О ПРОГРАММЕ", b.String(), "esc: назад")
}
