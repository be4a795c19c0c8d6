// SPDX-License-Identifier: Apache-2.0

package server

import "errors"

// errNoServersAreCreated is returned by NewServer when no listen address is
// configured.
var errNoServersAreCreated = errors.New("no servers are created")
