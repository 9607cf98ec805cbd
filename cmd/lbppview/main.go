package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kpango/glg"

	pkg "github.com/gucio321/sm2lbpp/pkg"
	"github.com/gucio321/sm2lbpp/pkg/profile"
	"github.com/gucio321/sm2lbpp/pkg/render"
	"github.com/gucio321/sm2lbpp/pkg/viewer"
)

func main() {
	inputFile := flag.String("i", "", "Input file")
	profileName := flag.String("p", profile.Default, "Profile")
	scale := flag.Int("s", 4, "Window size (multiple of the profile's canvas)")
	flag.Parse()

	if *inputFile == "" {
		flag.Usage()
		glg.Fatal("Input file is required")
	}

	// load file
	data, err := os.ReadFile(*inputFile)
	if err != nil {
		glg.Fatal(err)
	}

	p, err := profile.Get(*profileName)
	if err != nil {
		glg.Fatal(err)
	}

	// the preview is drawn in full window resolution
	p.Width *= *scale
	p.Height *= *scale

	processor, err := pkg.NewProcessor(p)
	if err != nil {
		glg.Fatal(err)
	}

	processor.Rasterizer(&render.Stroker{Color: viewer.PowerColor})

	img, err := processor.Preview(data)
	if err != nil {
		glg.Fatal(err)
	}

	v := viewer.NewViewer(filepath.Base(*inputFile), img)
	ebiten.SetWindowSize(v.Size().X, v.Size().Y)
	ebiten.SetWindowTitle("lbppview - " + *inputFile)

	if err := ebiten.RunGame(v); err != nil {
		glg.Fatal(err)
	}
}
