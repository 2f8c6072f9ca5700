// Package branding holds product naming shared by page titles and chrome.
package branding

// AppName is the product name shown in titles and the navigation logo.
const AppName = "Acme"
