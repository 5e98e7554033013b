// Package toasttest provides testing helpers for the toast engine.
//
// Clock replaces real removal timers with manually advanced fake time,
// and Recorder captures the state snapshots a subscriber receives:
//
//	func TestDelayedRemoval(t *testing.T) {
//	    clk := toasttest.NewClock()
//	    store := toast.New(
//	        toast.WithClock(clk),
//	        toast.WithRemoveDelay(time.Second),
//	    )
//
//	    rec := toasttest.NewRecorder()
//	    defer store.Subscribe(rec.Subscriber())()
//
//	    store.Show(toast.Toast{Title: "bye"}).Dismiss()
//	    clk.Advance(time.Second)
//
//	    if st, _ := rec.Last(); st.Len() != 0 {
//	        t.Errorf("expected empty state, got %d toasts", st.Len())
//	    }
//	}
package toasttest
