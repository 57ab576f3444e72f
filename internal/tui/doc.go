// Package tui implements the terminal interface for the admin panel.
//
// The interface is a bubbletea program with two screens: the account
// roster and the mailbox detail view for one account. Input is modal;
// the keymap package translates key presses into commands for the
// active mode (normal browsing, search entry, form editing, or a
// destructive-action confirmation).
//
// All service calls run as tea commands off the render loop. Responses
// carry the generation counter that was current when the request
// started, and the update loop drops any response from a previous
// generation, so a slow reply can never clobber state the operator has
// already moved past.
package tui
