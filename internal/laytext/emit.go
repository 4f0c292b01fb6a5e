package laytext

import (
	"fmt"
	"io"

	"github.com/layoutkit/layoutkit/pkg/types"
)

// EmitResult writes a layout result: one name/address line per section in
// the order the result carries them (ascending address), terminated by the
// empty-name record, encoded as a line holding only the new base.
func EmitResult(w io.Writer, res *types.Result) error {
	for _, p := range res.Placements {
		if _, err := fmt.Fprintf(w, "%s %d\n", p.Name, p.Addr); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d\n", res.NewBase)
	return err
}

// EmitRequest writes a layout request for the given sections, the inverse
// of ParseRequest. Used to feed a produced layout back in as a fully-known
// request.
func EmitRequest(w io.Writer, specs []types.SectionSpec, params types.Params) error {
	if _, err := fmt.Fprintf(w, "%d %d %d\n", len(specs), params.Base, params.Spacing); err != nil {
		return err
	}
	for _, s := range specs {
		addr := UnknownField
		if s.HasOldAddr() {
			addr = fmt.Sprintf("%d", s.OldAddr)
		}
		if _, err := fmt.Fprintf(w, "%s %s %d\n", s.Name, addr, s.Size); err != nil {
			return err
		}
	}
	return nil
}
