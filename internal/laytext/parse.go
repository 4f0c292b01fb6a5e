package laytext

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/layoutkit/layoutkit/pkg/types"
)

// ParseRequest parses a layout request:
//
//	# comment
//	<count> <base> <spacing>
//	<name> <old-address|?> <size>
//	...
//
// Numbers accept the usual Go prefixes, so hex addresses work. Blank lines
// and comment lines are skipped. The section count must match exactly;
// extra records are rejected so a concatenated or truncated file fails
// loudly instead of planning a partial image.
func ParseRequest(data []byte) ([]types.SectionSpec, types.Params, error) {
	var params types.Params
	var specs []types.SectionSpec

	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	sawHeader := false
	count := int64(0)

	for sc.Scan() {
		lineNo++
		fields := splitLine(sc.Text())
		if fields == nil {
			continue
		}

		if !sawHeader {
			if len(fields) != 3 {
				return nil, params, &MalformedInputError{Line: lineNo,
					Message: fmt.Sprintf("header wants 3 fields (count base spacing), got %d", len(fields))}
			}
			var err error
			if count, err = parseInt(fields[0]); err != nil {
				return nil, params, &MalformedInputError{Line: lineNo,
					Message: fmt.Sprintf("bad count %q", fields[0])}
			}
			if count < 0 {
				return nil, params, &MalformedInputError{Line: lineNo,
					Message: fmt.Sprintf("negative count %d", count)}
			}
			if params.Base, err = parseInt(fields[1]); err != nil {
				return nil, params, &MalformedInputError{Line: lineNo,
					Message: fmt.Sprintf("bad base %q", fields[1])}
			}
			if params.Spacing, err = parseInt(fields[2]); err != nil {
				return nil, params, &MalformedInputError{Line: lineNo,
					Message: fmt.Sprintf("bad spacing %q", fields[2])}
			}
			sawHeader = true
			specs = make([]types.SectionSpec, 0, count)
			continue
		}

		if int64(len(specs)) == count {
			return nil, params, &MalformedInputError{Line: lineNo,
				Message: fmt.Sprintf("trailing record beyond declared count %d", count)}
		}
		spec, err := parseRecord(fields, lineNo)
		if err != nil {
			return nil, params, err
		}
		specs = append(specs, spec)
	}
	if err := sc.Err(); err != nil {
		return nil, params, &MalformedInputError{Line: lineNo, Message: err.Error()}
	}

	if !sawHeader {
		return nil, params, &MalformedInputError{Line: lineNo, Message: "missing header"}
	}
	if int64(len(specs)) != count {
		return nil, params, &MalformedInputError{Line: lineNo,
			Message: fmt.Sprintf("declared %d sections, found %d", count, len(specs))}
	}
	return specs, params, nil
}

func parseRecord(fields []string, lineNo int) (types.SectionSpec, error) {
	var spec types.SectionSpec
	if len(fields) != 3 {
		return spec, &MalformedInputError{Line: lineNo,
			Message: fmt.Sprintf("record wants 3 fields (name address size), got %d", len(fields))}
	}
	spec.Name = fields[0]

	if fields[1] == UnknownField {
		spec.OldAddr = types.UnknownAddr
	} else {
		addr, err := parseInt(fields[1])
		if err != nil || addr < 0 {
			return spec, &MalformedInputError{Line: lineNo,
				Message: fmt.Sprintf("address %q is neither a non-negative integer nor %q",
					fields[1], UnknownField)}
		}
		spec.OldAddr = addr
	}

	size, err := parseInt(fields[2])
	if err != nil {
		return spec, &MalformedInputError{Line: lineNo,
			Message: fmt.Sprintf("bad size %q", fields[2])}
	}
	spec.Size = size
	return spec, nil
}

// ParseResult parses a layout result as written by EmitResult: one
// name/address line per section, then a final line holding only the new
// base (the empty-name terminal record).
func ParseResult(data []byte) (*types.Result, error) {
	res := &types.Result{}
	sawBase := false

	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := splitLine(sc.Text())
		if fields == nil {
			continue
		}
		if sawBase {
			return nil, &MalformedInputError{Line: lineNo,
				Message: "record after terminal base line"}
		}
		switch len(fields) {
		case 1:
			base, err := parseInt(fields[0])
			if err != nil {
				return nil, &MalformedInputError{Line: lineNo,
					Message: fmt.Sprintf("bad base %q", fields[0])}
			}
			res.NewBase = base
			sawBase = true
		case 2:
			addr, err := parseInt(fields[1])
			if err != nil {
				return nil, &MalformedInputError{Line: lineNo,
					Message: fmt.Sprintf("bad address %q", fields[1])}
			}
			res.Placements = append(res.Placements, types.Placement{
				Name: fields[0],
				Addr: addr,
			})
		default:
			return nil, &MalformedInputError{Line: lineNo,
				Message: fmt.Sprintf("result line wants 1 or 2 fields, got %d", len(fields))}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &MalformedInputError{Line: lineNo, Message: err.Error()}
	}
	if !sawBase {
		return nil, &MalformedInputError{Line: lineNo, Message: "missing terminal base line"}
	}
	return res, nil
}

func splitLine(line string) []string {
	line = strings.TrimSpace(line)
	if line == "" || line[0] == Comment {
		return nil
	}
	return strings.Fields(line)
}

func parseInt(s string) (int64, error) {
	return strconv.ParseInt(s, 0, 64)
}
