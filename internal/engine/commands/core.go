// Released under an MIT license. See LICENSE.

package commands

import (
	"math"
	"os"

	"github.com/michaelmacinnis/lisp/internal/common/fault"
	"github.com/michaelmacinnis/lisp/internal/common/validate"
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/type/num"
	"github.com/michaelmacinnis/lisp/internal/type/pair"
)

// Exit terminates the process. Tests replace it.
var Exit = os.Exit //nolint:gochecknoglobals

func exit(args cell.T) (cell.T, error) {
	v, err := validate.Fixed(args, 0, 1)
	if err != nil {
		return nil, err
	}

	status := 0.0
	if len(v) == 1 {
		status, err = num.Value(v[0])
		if err != nil {
			return nil, err
		}

		if status != math.Trunc(status) || status < 0 || status > 255 {
			return nil, fault.New(fault.Type, "exit status %s is not an integer from 0 to 255", literal.String(v[0]))
		}
	}

	Exit(int(status))

	return pair.Null, nil
}
