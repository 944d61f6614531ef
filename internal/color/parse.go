package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrMalformed is wrapped by every Parse failure.
var ErrMalformed = errors.New("malformed colour")

// Parse reads a CSS colour: a keyword, transparent, #rgb, #rgba, #rrggbb,
// #rrggbbaa, rgb()/rgba() or hsl()/hsla(). Alpha defaults to 1.
func Parse(s string) (Color, error) {
	t := trimLower(s)
	switch {
	case t == "":
		return Color{}, malformed(s, "empty string")
	case t == "transparent":
		return Color{}, nil
	case strings.HasPrefix(t, "#"):
		return parseHex(s, t)
	case strings.HasSuffix(t, ")"):
		return parseFunctional(s, t)
	}

	hex, ok := named[t]
	if !ok {
		return Color{}, malformed(s, "unknown colour keyword")
	}
	return parseHex(s, hex)
}

func malformed(input, reason string) error {
	return fmt.Errorf("%w %q: %s", ErrMalformed, input, reason)
}

func parseHex(input, t string) (Color, error) {
	digits := t[1:]
	for _, r := range digits {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return Color{}, malformed(input, "invalid hex digit")
		}
	}

	alpha := 1.0
	rgb := t
	switch len(digits) {
	case 3, 6:
	case 4:
		rgb = "#" + digits[:3]
		v, _ := strconv.ParseUint(digits[3:], 16, 8)
		alpha = float64(v) / 15
	case 8:
		rgb = "#" + digits[:6]
		v, _ := strconv.ParseUint(digits[6:], 16, 8)
		alpha = float64(v) / 255
	default:
		return Color{}, malformed(input, "hex colour needs 3, 4, 6 or 8 digits")
	}

	c, err := colorful.Hex(rgb)
	if err != nil {
		return Color{}, malformed(input, err.Error())
	}
	return fromColorful(c, alpha), nil
}

func parseFunctional(input, t string) (Color, error) {
	open := strings.IndexByte(t, '(')
	if open <= 0 {
		return Color{}, malformed(input, "missing function name")
	}
	fn := strings.TrimSpace(t[:open])
	body := t[open+1 : len(t)-1]

	var alphaArg string
	if slash := strings.IndexByte(body, '/'); slash >= 0 {
		alphaArg = strings.TrimSpace(body[slash+1:])
		body = body[:slash]
	}
	args := strings.Fields(strings.ReplaceAll(body, ",", " "))

	switch {
	case len(args) == 4 && alphaArg == "":
		alphaArg = args[3]
		args = args[:3]
	case len(args) != 3:
		return Color{}, malformed(input, fmt.Sprintf("%s() takes 3 channels and an optional alpha", fn))
	}

	alpha := 1.0
	if alphaArg != "" {
		a, err := parseAlpha(alphaArg)
		if err != nil {
			return Color{}, malformed(input, err.Error())
		}
		alpha = a
	}

	switch fn {
	case "rgb", "rgba":
		var ch [3]uint8
		for i, arg := range args {
			v, err := parseChannel(arg)
			if err != nil {
				return Color{}, malformed(input, err.Error())
			}
			ch[i] = v
		}
		return Color{R: ch[0], G: ch[1], B: ch[2], A: alpha}, nil
	case "hsl", "hsla":
		h, err := parseNumber(strings.TrimSuffix(args[0], "deg"))
		if err != nil {
			return Color{}, malformed(input, "invalid hue")
		}
		s, err := parsePercent(args[1])
		if err != nil {
			return Color{}, malformed(input, err.Error())
		}
		l, err := parsePercent(args[2])
		if err != nil {
			return Color{}, malformed(input, err.Error())
		}
		h = math.Mod(h, 360)
		if h < 0 {
			h += 360
		}
		return fromColorful(colorful.Hsl(h, s, l), alpha), nil
	default:
		return Color{}, malformed(input, fmt.Sprintf("unsupported function %q", fn))
	}
}

func parseChannel(arg string) (uint8, error) {
	if strings.HasSuffix(arg, "%") {
		p, err := parsePercent(arg)
		if err != nil {
			return 0, err
		}
		return uint8(math.Round(p * 255)), nil
	}
	v, err := parseNumber(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid channel %q", arg)
	}
	return uint8(math.Round(clamp(v, 0, 255))), nil
}

func parsePercent(arg string) (float64, error) {
	if !strings.HasSuffix(arg, "%") {
		return 0, fmt.Errorf("expected a percentage, got %q", arg)
	}
	v, err := parseNumber(strings.TrimSuffix(arg, "%"))
	if err != nil {
		return 0, fmt.Errorf("invalid percentage %q", arg)
	}
	return clamp(v/100, 0, 1), nil
}

func parseAlpha(arg string) (float64, error) {
	if strings.HasSuffix(arg, "%") {
		return parsePercent(arg)
	}
	v, err := parseNumber(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid alpha %q", arg)
	}
	return clamp(v, 0, 1), nil
}

// parseNumber is strconv.ParseFloat restricted to finite values; NaN would
// break Color equality.
func parseNumber(arg string) (float64, error) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", arg)
	}
	return v, nil
}

func fromColorful(c colorful.Color, alpha float64) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b, A: alpha}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
