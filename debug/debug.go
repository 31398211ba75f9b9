package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Canon    bool
	Build    bool
	Assemble bool
}

var d *debug

func init() {
	d = &debug{}
	d.Canon = boolEnv("GALAXYWRAP_DEBUG_CANON")
	d.Build = boolEnv("GALAXYWRAP_DEBUG_BUILD")
	d.Assemble = boolEnv("GALAXYWRAP_DEBUG_ASSEMBLE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Canon() bool {
	return d.Canon
}
func Build() bool {
	return d.Build
}
func Assemble() bool {
	return d.Assemble
}
