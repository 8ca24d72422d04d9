// Package tui implements the vpilot control panel as a full-screen terminal UI.
//
// Built on Bubble Tea, the panel has a fixed set of pages created once at
// startup:
//   - StartPage: one button per non-empty group
//   - one page per non-empty group: a row per device with a label, an on
//     button and an off button, plus a back button
//
// All pages occupy the same screen region and only the raised one is drawn.
// Router.Show is the only navigation primitive; there is no history, and
// "back" simply raises StartPage.
//
// # Commands
//
// Pages never touch device state. A key press is turned into a Command
// (TurnOn, TurnOff, Navigate, EditDestination, Quit) and AppModel.dispatch
// carries it out against the remote.Controller, the Router or the
// broadcaster.
//
// # Button State
//
// The enabled state of a device's buttons is read from the controller on
// every render, so the on and off buttons are always complementary. Pressing
// a disabled button sends nothing.
//
// # Usage Example
//
//	model := tui.NewAppModel(cfg, controller, broadcaster)
//	program := tea.NewProgram(model, tea.WithAltScreen())
//	if _, err := program.Run(); err != nil {
//	    return err
//	}
package tui
