// Package ui renders the output of vpilot's one-shot commands.
//
// Unlike the interactive panel in internal/tui, these components follow a
// "run once and exit" pattern: send prints a Result box, listen prints a
// Header banner before streaming datagrams. Nothing here reads input.
//
// Example:
//
//	fmt.Println(ui.NewSuccessResult("Wysłano polecenie",
//	    ui.Field{Key: "Polecenie", Value: "on lamp1"},
//	    ui.Field{Key: "Adres", Value: "255.255.255.255:2018"},
//	))
//
// Fields render in the order given, so output is stable between runs.
package ui
