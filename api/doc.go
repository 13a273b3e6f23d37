// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Public contracts of the pooled collection layer: slice pooling,
// queue interfaces, and the shared error taxonomy. Implementations
// live in the pool and queue packages.
package api
