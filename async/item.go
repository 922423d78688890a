// FILE: lixenwraith/colog/async/item.go
package async

// Item is the unit of queue traffic: a Record plus the Formatter and
// ordered Sink list chosen by the producer. Formatter and Sinks are
// shared handles — ownership is shared between the producer and the
// backend for the item's lifetime, and is released once the worker has
// consumed the item. This lets a producer's Logger be reconfigured or
// even dropped while items it already submitted are still in flight.
type Item struct {
	Record    Record
	Formatter Formatter
	Sinks     []Sink
}
