package ntru

import (
	"fmt"
	"io"
	"os"
)

var debugOn = os.Getenv("NTRU_DEBUG") == "1"

// dbg prints to w only when NTRU_DEBUG=1 is set in the environment.
func dbg(w io.Writer, format string, a ...any) {
	if !debugOn {
		return
	}
	fmt.Fprintf(w, format, a...)
}
