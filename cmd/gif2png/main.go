package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/term"

	"seehuhn.de/go/gif"
)

func main() {
	scale := flag.Float64("scale", 1.0, "scale factor for the output images")
	flag.Parse()

	if flag.NArg() < 2 {
		fmt.Printf("Usage: %s [options] input.gif outdir\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	inputFile := flag.Arg(0)
	outDir := flag.Arg(1)

	g, err := decode(inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding GIF: %v\n", err)
		os.Exit(1)
	}

	err = os.MkdirAll(outDir, 0o755)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	isTerminal := term.IsTerminal(int(os.Stdout.Fd()))
	for i, frame := range g.Frames {
		img := frame
		if *scale != 1.0 {
			img = rescale(frame, *scale)
		}
		fname := filepath.Join(outDir, fmt.Sprintf("frame-%03d.png", i))
		err = writePNG(fname, img)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", fname, err)
			os.Exit(1)
		}
		if isTerminal {
			fmt.Printf("\rframe %d/%d", i+1, len(g.Frames))
		}
	}
	if isTerminal {
		fmt.Println()
	}
	fmt.Printf("Successfully wrote %d frames of %s to %s\n",
		len(g.Frames), inputFile, outDir)
}

func decode(fname string) (*gif.GIF, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	return gif.DecodeAll(data, nil)
}

func rescale(src *image.RGBA, scale float64) *image.RGBA {
	b := src.Bounds()
	w := int(float64(b.Dx())*scale + 0.5)
	h := int(float64(b.Dy())*scale + 0.5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

func writePNG(fname string, img image.Image) error {
	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = png.Encode(out, img)
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
