package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	snapfit "SnapForge/internal/snapfit"
	xlsx "SnapForge/internal/snapfit/xlsx"
)

func optional(v float64) *float64 {
	if v == 0 {
		return nil
	}
	return &v
}

func main() {
	profile := flag.String("profile", string(snapfit.RectangleConstant), "profile id (see -list)")
	list := flag.Bool("list", false, "list profile ids and exit")

	modulus := flag.Float64("modulus", 2.07e9, "elastic modulus E [Pa]")
	strain := flag.Float64("strain", 0.02, "allowable strain [-]")
	length := flag.Float64("length", 25.4, "cantilever length L [mm]")
	thickness := flag.Float64("thickness", 0, "thickness h [mm], 0 = not set")
	width := flag.Float64("width", 0, "width b [mm], 0 = not set")
	rootWidth := flag.Float64("rootwidth", 0, "root width a [mm], 0 = not set")
	radius := flag.Float64("radius", 0, "outer radius r2 [mm], 0 = not set")
	sectionZ := flag.Float64("z", 0, "section modulus Z [mm3], 0 = not set")
	friction := flag.Float64("mu", 0.30, "friction coefficient [-]")
	leadAngle := flag.Float64("alpha", 5.0, "lead-in angle [deg]")

	param := flag.String("param", string(snapfit.SweepThickness), "swept parameter: thickness_mm, length_mm or strain")
	start := flag.Float64("start", 1.0, "sweep start value")
	stop := flag.Float64("stop", 5.0, "sweep stop value")
	steps := flag.Int("steps", 20, "number of sweep samples")
	out := flag.String("out", "snapfit-sweep.xlsx", "output workbook path")
	flag.Parse()

	if *list {
		for _, p := range snapfit.Profiles() {
			fmt.Println(p)
		}
		return
	}

	spec := snapfit.SweepSpec{
		Param: snapfit.SweepParam(*param),
		Start: *start,
		Stop:  *stop,
		Steps: *steps,
		Baseline: snapfit.Input{
			Profile:           snapfit.Profile(*profile),
			ModulusPa:         *modulus,
			Strain:            *strain,
			LengthMM:          *length,
			ThicknessMM:       optional(*thickness),
			WidthMM:           optional(*width),
			RootWidthMM:       optional(*rootWidth),
			OuterRadiusMM:     optional(*radius),
			SectionModulusMM3: optional(*sectionZ),
			Friction:          *friction,
			LeadAngleDeg:      *leadAngle,
		},
	}

	f, err := xlsx.RunSweepWorkbook(spec)
	if err != nil {
		log.Fatalf("sweep failed: %v", err)
	}
	if err := f.SaveAs(*out); err != nil {
		log.Fatalf("writing %s: %v", *out, err)
	}
	fmt.Fprintf(os.Stderr, "wrote %d rows to %s\n", *steps, *out)
}
