package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Coerce  bool
	Flatten bool
	Parse   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Coerce = boolEnv("VOEVENT_DEBUG_COERCE")
	d.Flatten = boolEnv("VOEVENT_DEBUG_FLATTEN")
	d.Parse = boolEnv("VOEVENT_DEBUG_PARSE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Coerce() bool {
	return d.Coerce
}
func Flatten() bool {
	return d.Flatten
}
func Parse() bool {
	return d.Parse
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
