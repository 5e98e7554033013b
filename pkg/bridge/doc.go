// Package bridge relays toast state over WebSockets.
//
// The bridge subscribes to a toast.Store and pushes the full state as
// a JSON frame on every dispatch. Clients are plain WebSocket
// consumers; any toast UI can render the frames:
//
//	window.addEventListener — or any WS client — receives:
//	    { "type": "toast:state", "toasts": [ { "id": "...", "open": true, ... } ] }
//
// and may send dismissals back:
//
//	{ "op": "dismiss", "id": "..." }   // one toast
//	{ "op": "dismiss" }                // all toasts
//	{ "op": "remove",  "id": "..." }   // skip the removal delay
//
// Slow clients never block fan-out: frames are dropped per client when
// the outbound queue is full, which is safe because every frame is a
// complete snapshot rather than a delta.
//
// # Serving
//
//	store := toast.New(toast.WithCapacity(3))
//	b := bridge.New(store)
//	defer b.Close()
//	http.ListenAndServe(":8080", b.Handler())
package bridge
