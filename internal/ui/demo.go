package ui

import (
	"fmt"
	"time"

	"github.com/atomicstack/pi-menu-control/menu"
	"github.com/atomicstack/pi-menu-control/notification"
	"github.com/atomicstack/pi-menu-control/page"
	"github.com/atomicstack/pi-menu-control/widgets"
)

// demoMenu builds the built-in menu tree: system status backed by the
// metric pollers, the notification feed, and a settings branch exercising
// the bundled widget pages.
func (m *Model) demoMenu() menu.Menu {
	return &menu.HeadlessMenu{
		Title: menu.Static("Main"),
		Items: menu.Static([]menu.Item{
			&menu.SubMenuItem{
				ItemBase: menu.ItemBase{
					Key:   "status",
					Label: menu.Static("Status"),
					Icon:  menu.Static("📊"),
				},
				SubMenu: menu.Static[menu.Menu](m.statusMenu()),
			},
			&menu.SubMenuItem{
				ItemBase: menu.ItemBase{
					Key:   "notifications",
					Label: menu.Static("Notifications"),
					Icon:  menu.Static("🔔"),
					Color: menu.Watch(menu.SubscribableFunc[menu.Color](func(deliver func(menu.Color)) menu.Unsubscribe {
						return m.notifications.Subscribe(func([]*notification.Notification) {
							if m.notifications.UnreadCount() > 0 {
								deliver(menu.DangerColor)
							} else {
								deliver(menu.TextColor)
							}
						})
					})),
				},
				SubMenu: menu.Compute(func() menu.Menu {
					return m.notifications.Menu(styles, m.notificationSearchItem())
				}),
			},
			&menu.SubMenuItem{
				ItemBase: menu.ItemBase{
					Key:   "settings",
					Label: menu.Static("Settings"),
					Icon:  menu.Static("⚙"),
				},
				SubMenu: menu.Static[menu.Menu](m.settingsMenu()),
			},
		}),
		Placeholder: menu.Static("Empty"),
	}
}

// statusMenu lists the live host readings; each opens a gauge page bound
// to the same stream.
func (m *Model) statusMenu() menu.Menu {
	items := []menu.Item{
		m.metricItem("cpu", "CPU", "load", m.metrics.CPU()),
		m.metricItem("memory", "Memory", "used", m.metrics.Memory()),
		m.metricItem("temperature", "Temperature", "of 100°C", m.metrics.Temperature()),
		m.metricItem("disk", "Disk", "used", m.metrics.Disk()),
	}
	return &menu.HeadedMenu{
		Title:      menu.Static("Status"),
		Heading:    menu.Static("System status"),
		SubHeading: menu.Static("Live host readings"),
		Items:      menu.Static(items),
	}
}

// metricItem builds one status row whose label tracks the stream and whose
// page shows it as a gauge.
func (m *Model) metricItem(key, name, unit string, source *menu.Observable[float64]) menu.Item {
	return &menu.ApplicationItem{
		ItemBase: menu.ItemBase{
			Key: key,
			Label: menu.Watch(menu.SubscribableFunc[string](func(deliver func(string)) menu.Unsubscribe {
				return source.Subscribe(func(value float64) {
					deliver(fmt.Sprintf("%s %3.0f%%", name, value*100))
				})
			})),
		},
		Application: menu.Static[page.Factory](func() page.Application {
			return widgets.NewGauge(name, unit, menu.Watch[float64](source), styles)
		}),
	}
}

// notificationSearchItem opens a text entry whose submission pushes a
// fuzzy-matched results menu on top of it.
func (m *Model) notificationSearchItem() menu.Item {
	return &menu.ActionItem{
		ItemBase: menu.ItemBase{
			Key:   "search",
			Label: menu.Static("Search"),
			Icon:  menu.Static("🔍"),
		},
		Action: func() any {
			input := widgets.NewInput("Search notifications", "title or text", styles)
			input.OnSubmit = func(query string) {
				m.nav.OpenMenu(m.notifications.SearchMenu(query, styles))
			}
			return input
		},
	}
}

// settingsMenu exercises the widget pages: volume, text entry, a Wi-Fi QR
// code, a long-running sync with a spinner, and a power-off prompt.
func (m *Model) settingsMenu() menu.Menu {
	deviceName := menu.NewObservable("raspberrypi")

	return &menu.HeadedMenu{
		Title:   menu.Static("Settings"),
		Heading: menu.Static("Settings"),
		SubHeading: menu.Watch(menu.SubscribableFunc[string](func(deliver func(string)) menu.Unsubscribe {
			return deviceName.Subscribe(func(name string) { deliver("Device: " + name) })
		})),
		Items: menu.Static([]menu.Item{
			&menu.ActionItem{
				ItemBase: menu.ItemBase{
					Key:   "volume",
					Label: menu.Static("Volume"),
					Icon:  menu.Static("🔊"),
				},
				Action: func() any {
					volume := widgets.NewVolume("Volume", m.volume, styles)
					volume.OnChange = func(value float64) { m.volume = value }
					return volume
				},
			},
			&menu.ActionItem{
				ItemBase: menu.ItemBase{
					Key:   "device-name",
					Label: menu.Static("Device name"),
					Icon:  menu.Static("✏"),
				},
				Action: func() any {
					input := widgets.NewInput("Device name", deviceName.Get(), styles)
					input.SetValue(deviceName.Get())
					input.OnSubmit = func(value string) {
						if value != "" {
							deviceName.Set(value)
						}
						m.nav.GoBack()
					}
					return input
				},
			},
			&menu.ApplicationItem{
				ItemBase: menu.ItemBase{
					Key:   "wifi",
					Label: menu.Static("Wi-Fi code"),
					Icon:  menu.Static("📶"),
				},
				Application: menu.Static[page.Factory](func() page.Application {
					return widgets.NewQRCode("Wi-Fi", "WIFI:S:pi-menu;T:WPA;P:raspberry;;", styles)
				}),
			},
			&menu.ActionItem{
				ItemBase: menu.ItemBase{
					Key:   "sync",
					Label: menu.Static("Sync"),
					Icon:  menu.Static("⟳"),
				},
				Action: m.startSync,
			},
			&menu.ActionItem{
				ItemBase: menu.ItemBase{
					Key:   "power",
					Label: menu.Static("Power off"),
					Icon:  menu.Static("⏻"),
					Color: menu.Static(menu.DangerColor),
				},
				Action: m.powerPrompt,
			},
		}),
	}
}

// startSync opens a spinner page and closes it from a background timer,
// dropping a notification into the feed when done.
func (m *Model) startSync() any {
	spin := widgets.NewSpinner("Sync", "Syncing…", styles)
	time.AfterFunc(3*time.Second, func() {
		m.nav.CloseApplication(spin)
		m.notifications.Add(notification.New("Sync finished", "All settings are up to date.", notification.Low))
	})
	return spin
}

// powerPrompt opens the shutdown confirmation.
func (m *Model) powerPrompt() any {
	return widgets.NewPrompt("Power off", "⏻", "Power off the device?", []widgets.PromptOption{
		{
			Label: "Cancel",
			Icon:  "←",
			Color: menu.SuccessColor,
			Action: func() any {
				m.nav.GoBack()
				return nil
			},
		},
		{
			Label: "Power off",
			Icon:  "⏻",
			Color: menu.DangerColor,
			Action: func() any {
				m.setInfo("Shutting down…")
				m.nav.GoBack()
				return nil
			},
		},
	}, styles)
}
