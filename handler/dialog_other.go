//go:build !windows

package handler

// showErrorDialog is a no-op outside Windows; the console banner is
// the fatal output.
func showErrorDialog(string) {}
