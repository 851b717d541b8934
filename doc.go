// Package main provides the entry point of debcf, the disposable email blocker service.
// It keeps a database copy of the bundled list of disposable mail domains and answers
// the validation calls a host form system makes for every submitted email field,
// rejecting addresses on disposable domains for forms that enabled blocking.
// The application uses gorm for data persistence and fiber for the HTTP API.
package main
