// Package helper collects small debug/output utilities that render plain
// values, value.Value trees and value.Snapshots.
package helper

import (
	"fmt"
	"strings"

	"github.com/TylerBrock/colorjson"
	"github.com/fatih/color"
	jsoniter "github.com/json-iterator/go"

	"github.com/kallsyms/gasp-sub000/value"
)

func newFormatter() *colorjson.Formatter {
	f := colorjson.NewFormatter()
	f.Indent = 2
	f.RawStrings = true
	return f
}

// Dump prints each value to stdout, color-highlighted by kind.
func Dump(values ...interface{}) {
	f := newFormatter()
	for _, v := range values {
		if err, ok := v.(error); ok {
			color.Red(err.Error())
			continue
		}

		switch tv := v.(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			color.Cyan(fmt.Sprintf("%v", tv))
			continue

		case string, []byte:
			color.Green(fmt.Sprintf("%s", tv))
			continue

		case value.Value:
			color.Magenta(tv.String())
			continue

		case value.Snapshot:
			if tv.IsComplete() {
				color.Green(tv.Value.String())
			} else {
				color.Yellow("%s: %s", tv.Path.String(), tv.Value.String())
			}
			continue

		default:
			dumpViaJSON(f, v)
		}
	}
}

func dumpViaJSON(f *colorjson.Formatter, v interface{}) {
	txt, err := jsoniter.Marshal(v)
	if err != nil {
		color.Red(err.Error())
		return
	}
	var res interface{}
	if err := jsoniter.Unmarshal(txt, &res); err != nil {
		color.Red(err.Error())
		return
	}
	out, err := f.Marshal(res)
	if err != nil {
		color.Red(err.Error())
		return
	}
	fmt.Println(string(out))
}

// ToString renders values the same way Dump does, with color disabled, for
// callers that want the text rather than a terminal side effect (e.g. log
// lines).
func ToString(values ...interface{}) string {
	f := newFormatter()
	f.DisabledColor = true

	var out strings.Builder
	for _, v := range values {
		if err, ok := v.(error); ok {
			out.WriteString(err.Error() + "\n")
			continue
		}

		switch tv := v.(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			fmt.Fprintf(&out, "%v\n", tv)
			continue

		case string, []byte:
			fmt.Fprintf(&out, "%s\n", tv)
			continue

		case value.Value:
			out.WriteString(tv.String() + "\n")
			continue

		case value.Snapshot:
			out.WriteString(tv.Value.String() + "\n")
			continue

		default:
			txt, err := jsoniter.Marshal(v)
			if err != nil {
				out.WriteString(err.Error() + "\n")
				continue
			}
			var res interface{}
			jsoniter.Unmarshal(txt, &res)
			rendered, _ := f.Marshal(res)
			out.WriteString(string(rendered) + "\n")
		}
	}
	return out.String()
}

// DumpError renders values in red, for a failed Engine.Step/Finish.
func DumpError(values ...interface{}) { color.Red(ToString(values...)) }

// DumpWarn renders values in yellow, for a recovered repair.Fix coercion.
func DumpWarn(values ...interface{}) { color.Yellow(ToString(values...)) }

// DumpInfo renders values in blue, for routine trace output.
func DumpInfo(values ...interface{}) { color.Blue(ToString(values...)) }
