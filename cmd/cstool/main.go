// cstool converts image files between color spaces: decode the input,
// run every pixel through the conversion engine, re-encode as PNG (or
// APNG for animated input).
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"strings"

	"github.com/kettek/apng"
	"github.com/pkg/profile"
	"github.com/rwcarlsen/goexif/exif"
	log "github.com/sirupsen/logrus"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/kovidgoyal/colorspace"
	"github.com/kovidgoyal/colorspace/linear"
	"github.com/kovidgoyal/colorspace/srgb"
)

var spaceNames = map[string]colorspace.ColorSpace{
	"srgb":        colorspace.NewRgb(colorspace.SRGB),
	"bt709":       colorspace.NewRgb(colorspace.BT709RGB),
	"linear-srgb": colorspace.NewRgb(colorspace.RgbColorSpace{Primaries: colorspace.PrimariesBt709, Transfer: colorspace.TransferLinear, Whitepoint: colorspace.WhitepointD65, Luminance: colorspace.LuminanceSdr}),
	"bt2020":      colorspace.NewRgb(colorspace.RgbColorSpace{Primaries: colorspace.PrimariesBt2020, Transfer: colorspace.TransferBt2020_10bit, Whitepoint: colorspace.WhitepointD65, Luminance: colorspace.LuminanceSdr}),
	"bt601-625":   colorspace.NewRgb(colorspace.RgbColorSpace{Primaries: colorspace.PrimariesBt601_625, Transfer: colorspace.TransferBt601, Whitepoint: colorspace.WhitepointD65, Luminance: colorspace.LuminanceSdr}),
	"oklab":       colorspace.NewOklab(),
	"srlab2":      colorspace.NewSrLab2(colorspace.WhitepointD65),
	"srlab2-d50":  colorspace.NewSrLab2(colorspace.WhitepointD50),
	"xyz":         colorspace.NewScalars(colorspace.TransferLinear),
}

func parseSpace(name string) (colorspace.ColorSpace, error) {
	if s, ok := spaceNames[strings.ToLower(name)]; ok {
		return s, nil
	}
	known := make([]string, 0, len(spaceNames))
	for k := range spaceNames {
		known = append(known, k)
	}
	return colorspace.ColorSpace{}, fmt.Errorf("unknown color space %q (known: %s)", name, strings.Join(known, ", "))
}

func main() {
	from := flag.String("from", "", "source color space (default: sniff from EXIF, else srgb)")
	to := flag.String("to", "srgb", "destination color space")
	cpuprofile := flag.Bool("cpuprofile", false, "write a CPU profile to the current directory")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	if *cpuprofile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: cstool [flags] input-file output-file")
		os.Exit(1)
	}
	if err := run(flag.Arg(0), flag.Arg(1), *from, *to); err != nil {
		log.Fatalf("%v", err)
	}
}

func sniffSource(path string) colorspace.ColorSpace {
	f, err := os.Open(path)
	if err != nil {
		return spaceNames["srgb"]
	}
	defer f.Close()
	x, err := exif.Decode(f)
	if err != nil {
		log.Debugf("no EXIF metadata in %s: %v", path, err)
		return spaceNames["srgb"]
	}
	if tag, err := x.Get(exif.ColorSpace); err == nil {
		if v, err := tag.Int(0); err == nil && v == 1 {
			log.Debugf("EXIF declares sRGB")
			return spaceNames["srgb"]
		}
		log.Warnf("EXIF color space of %s is not sRGB, assuming sRGB anyway", path)
	}
	return spaceNames["srgb"]
}

func run(input, output, from, to string) error {
	dst, err := parseSpace(to)
	if err != nil {
		return err
	}
	var src colorspace.ColorSpace
	if from == "" {
		src = sniffSource(input)
	} else {
		if src, err = parseSpace(from); err != nil {
			return err
		}
	}

	f, err := os.Open(input)
	if err != nil {
		return err
	}
	defer f.Close()

	if strings.HasSuffix(strings.ToLower(input), ".apng") {
		return convertAnimation(f, output, src, dst)
	}
	img, format, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", input, err)
	}
	log.Debugf("decoded %s image %v", format, img.Bounds())

	out, err := convertImage(img, src, dst)
	if err != nil {
		return err
	}
	w, err := os.Create(output)
	if err != nil {
		return err
	}
	defer w.Close()
	return png.Encode(w, out)
}

func convertAnimation(f *os.File, output string, src, dst colorspace.ColorSpace) error {
	a, err := apng.DecodeAll(f)
	if err != nil {
		return err
	}
	log.Debugf("converting %d animation frames", len(a.Frames))
	for i := range a.Frames {
		out, err := convertImage(a.Frames[i].Image, src, dst)
		if err != nil {
			return err
		}
		a.Frames[i].Image = out
	}
	w, err := os.Create(output)
	if err != nil {
		return err
	}
	defer w.Close()
	return apng.Encode(w, a)
}

func convertImage(img image.Image, src, dst colorspace.ColorSpace) (image.Image, error) {
	b := img.Bounds()
	pixels := unpack(img, src)
	converted := make([]colorspace.Pixel, len(pixels.buf))
	if err := colorspace.BufferConvert(converted, pixels.buf, pixels.space, dst); err != nil {
		return nil, err
	}
	out := image.NewNRGBA64(b)
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p := converted[i]
			i++
			out.SetNRGBA64(x, y, color.NRGBA64{
				R: linear.NormalisedTo16Bit(p[0]),
				G: linear.NormalisedTo16Bit(p[1]),
				B: linear.NormalisedTo16Bit(p[2]),
				A: linear.NormalisedTo16Bit(p[3]),
			})
		}
	}
	return out, nil
}

type unpacked struct {
	buf   []colorspace.Pixel
	space colorspace.ColorSpace
}

var linearSRGB = spaceNames["linear-srgb"]

// unpack reads the image into normalised pixels. For 8-bit sRGB input
// the LUT backed decoder is used and the engine is handed already
// linear values, skipping the scalar curve per pixel.
func unpack(img image.Image, src colorspace.ColorSpace) unpacked {
	b := img.Bounds()
	buf := make([]colorspace.Pixel, 0, b.Dx()*b.Dy())
	if n, ok := img.(*image.NRGBA); ok && src == spaceNames["srgb"] {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			row := n.Pix[n.Stride*(y-b.Min.Y):]
			for x := 0; x < b.Dx(); x++ {
				s := row[x*4 : x*4+4 : x*4+4]
				buf = append(buf, colorspace.Pixel{
					srgb.From8Bit(s[0]), srgb.From8Bit(s[1]), srgb.From8Bit(s[2]),
					linear.From8Bit(s[3]),
				})
			}
		}
		return unpacked{buf: buf, space: linearSRGB}
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBA64Model.Convert(img.At(x, y)).(color.NRGBA64)
			buf = append(buf, colorspace.Pixel{
				linear.From16Bit(c.R), linear.From16Bit(c.G),
				linear.From16Bit(c.B), linear.From16Bit(c.A),
			})
		}
	}
	return unpacked{buf: buf, space: src}
}
