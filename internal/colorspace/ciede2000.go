package colorspace

import "math"

// hueTieTolerance absorbs atan2 rounding so that a hue difference of
// exactly 180 degrees takes the "<= pi" branch of both hue switches.
const hueTieTolerance = 1e-12

// DeltaE2000 computes the CIEDE2000 color difference between measured and
// reference, with parametric weights k_L=k_C=k_H=1, following the
// formula in Sharma, Wu & Dalal (2005).
func DeltaE2000(measured, reference LabSample) float64 {
	l1, a1, b1 := measured.L, measured.A, measured.B
	l2, a2, b2 := reference.L, reference.A, reference.B

	c1 := math.Hypot(a1, b1)
	c2 := math.Hypot(a2, b2)
	cBar := (c1 + c2) / 2

	g := 0.5 * (1 - math.Sqrt(pow7(cBar)/(pow7(cBar)+pow7(25))))

	aP1 := (1 + g) * a1
	aP2 := (1 + g) * a2

	cP1 := math.Hypot(aP1, b1)
	cP2 := math.Hypot(aP2, b2)

	hP1 := hueAngle(b1, aP1)
	hP2 := hueAngle(b2, aP2)

	deltaLP := l2 - l1
	deltaCP := cP2 - cP1

	var deltaHPrimeAngle float64
	switch {
	case cP1*cP2 == 0:
		deltaHPrimeAngle = 0
	case math.Abs(hP2-hP1) <= math.Pi+hueTieTolerance:
		deltaHPrimeAngle = hP2 - hP1
	case hP2-hP1 > math.Pi:
		deltaHPrimeAngle = hP2 - hP1 - 2*math.Pi
	default:
		deltaHPrimeAngle = hP2 - hP1 + 2*math.Pi
	}

	deltaHP := 2 * math.Sqrt(cP1*cP2) * math.Sin(deltaHPrimeAngle/2)

	lBar := (l1 + l2) / 2
	sL := 1 + (0.015*pow2(lBar-50))/math.Sqrt(20+pow2(lBar-50))

	cBarP := (cP1 + cP2) / 2
	sC := 1 + 0.045*cBarP

	var hBarP float64
	switch {
	case cP1*cP2 == 0:
		hBarP = hP1 + hP2
	case math.Abs(hP1-hP2) <= math.Pi+hueTieTolerance:
		hBarP = (hP1 + hP2) / 2
	case hP1+hP2 < 2*math.Pi:
		hBarP = (hP1 + hP2 + 2*math.Pi) / 2
	default:
		hBarP = (hP1 + hP2 - 2*math.Pi) / 2
	}

	t := 1 - 0.17*math.Cos(hBarP-deg2rad(30)) +
		0.24*math.Cos(2*hBarP) +
		0.32*math.Cos(3*hBarP+deg2rad(6)) -
		0.20*math.Cos(4*hBarP-deg2rad(63))

	sH := 1 + 0.015*cBarP*t

	deltaTheta := deg2rad(30) * math.Exp(-pow2((rad2deg(hBarP)-275)/25))
	rC := 2 * math.Sqrt(pow7(cBarP)/(pow7(cBarP)+pow7(25)))
	rT := -rC * math.Sin(2*deltaTheta)

	termL := deltaLP / sL
	termC := deltaCP / sC
	termH := deltaHP / sH

	sumSquares := termL*termL + termC*termC + termH*termH + rT*termC*termH
	if sumSquares < 0 {
		sumSquares = 0
	}
	return math.Sqrt(sumSquares)
}

// hueAngle returns atan2(b, aPrime) normalized to [0, 2*pi).
func hueAngle(b, aPrime float64) float64 {
	h := math.Atan2(b, aPrime)
	if h < 0 {
		h += 2 * math.Pi
	}
	return h
}

func pow2(v float64) float64 { return v * v }
func pow7(v float64) float64 {
	v2 := v * v
	v4 := v2 * v2
	return v4 * v2 * v
}

func deg2rad(d float64) float64 { return d * math.Pi / 180 }
func rad2deg(r float64) float64 { return r * 180 / math.Pi }
