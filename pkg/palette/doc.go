// Package palette implements the command launcher engine: a registry of
// user-defined commands, a literal case-insensitive filter, and a session
// state machine that tracks a 1-based selection cursor with wraparound and
// formats display rows for a renderer.
//
// The package owns no window or terminal. Hosts open a session, feed it
// query and navigation events, and draw the View it exposes:
//
//	reg := palette.NewRegistry()
//	_ = reg.Configure([]palette.Command{
//	    {Name: "Save", Category: "File", Action: palette.Literal("w")},
//	})
//	s, err := palette.Open(reg)
//	if err != nil {
//	    return err
//	}
//	s.SetQuery("sa")
//	if cmd, ok := s.ExecuteSelected(); ok {
//	    // hand cmd.Action to an invoker
//	}
package palette
