package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kpango/glg"

	pkg "github.com/gucio321/sm2lbpp/pkg"
	"github.com/gucio321/sm2lbpp/pkg/profile"
)

// Environment variables that configure the run.
const (
	envDebug   = "SM2LBPP_DEBUG"
	envProfile = "SM2LBPP_PROFILE"
	envDumpSVG = "SM2LBPP_DUMP_SVG"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "sm2lbpp <g-code file>\n\nsm2lbpp %s\n%s\n", pkg.Version, pkg.URL)
}

func main() {
	flag.Usage = usage
	flag.Parse()

	debug := os.Getenv(envDebug) == "1"
	if !debug {
		glg.Get().SetLevelMode(glg.DEBG, glg.NONE)
	}

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	profileName := profile.Default
	if name := os.Getenv(envProfile); name != "" {
		profileName = name
	}

	p, err := profile.Get(profileName)
	if err != nil {
		glg.Fatalf("Cannot load profile: %v", err)
	}

	processor, err := pkg.NewProcessor(p)
	if err != nil {
		glg.Fatalf("Cannot use profile %s: %v", profileName, err)
	}

	processor.Trace(debug).DumpSVG(os.Getenv(envDumpSVG))

	status, err := processor.ProcessFile(flag.Arg(0))
	if err != nil {
		// already reported
		os.Exit(1)
	}

	glg.Debugf("%s: %s", flag.Arg(0), status)
}
