package trace

import (
	"fmt"

	"github.com/thelolagemann/gbcore/pkg/log"
)

// NewLogObserver returns an Observer that writes every event to l at
// debug level.
func NewLogObserver(l log.Logger) Observer {
	return ObserverFunc(func(e Event) {
		switch e.Kind {
		case Step:
			l.WithFields(log.Fields{
				"pc":     fmt.Sprintf("0x%04X", e.PC),
				"opcode": fmt.Sprintf("0x%02X", e.Opcode),
			}).Debugf("executed %s", e.Name)
		case Write:
			fields := log.Fields{
				"address": fmt.Sprintf("0x%04X", e.Address),
				"value":   fmt.Sprintf("0x%02X", e.Value),
				"region":  e.Region.String(),
			}
			if e.Detail != "" {
				fields["area"] = e.Detail
			}
			if e.Stored {
				l.WithFields(fields).Debug("write")
			} else {
				l.WithFields(fields).Debug("write to unimplemented register discarded")
			}
		}
	})
}
