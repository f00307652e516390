// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package endpoint supplies the base address of the remote character API.

The provider is a pure lookup: Default is used unless configuration
overrides it, and the path helpers build the two URLs the application
ever requests:

	endpoint.Characters(base)    // <base>/characters
	endpoint.Character(base, id) // <base>/characters/<id>
*/
package endpoint
