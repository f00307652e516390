// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package views renders the HTML shell as templ components.

	Page(list, detail)   full document with header, fetch trigger and regions
	CharacterList(chars) links to /characters/{id}
	CharacterView(c)     definition list of every field of one character
	DetailError(msg)     message shown in the detail region

Components are written in views.templ; views_templ.go is produced from it by
`templ generate` and checked in. Handlers serve them with templ.Handler.
Loading and error state are not part of Page.
*/
package views
