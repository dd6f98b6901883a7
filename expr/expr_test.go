package expr

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestEval_Arithmetic(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1+2*3", 7},
		{"(1+2)*3", 9},
		{"10/4", 2.5},
		{"2^3^2", 512},
		{"2**3", 8},
		{"-2^2", -4},
		{"2^-1", 0.5},
		{"--3", 3},
		{"+4", 4},
		{".5*4", 2},
		{"1e2+1", 101},
		{"7-2-1", 4},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Eval(tt.in, Env{})
			if err != nil {
				t.Fatalf("Eval(%q) error: %v", tt.in, err)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Eval(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestEval_FunctionsAndConstants(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"sin(0)", 0},
		{"cos(pi)", -1},
		{"Math.sin(Math.PI/2)", 1},
		{"Math.pow(2, 10)", 1024},
		{"sqrt(16)+abs(-2)", 6},
		{"min(3, 1, 2)", 1},
		{"max(3, 1, 2)", 3},
		{"atan2(1, 1)*4", math.Pi},
		{"hypot(3, 4)", 5},
		{"sign(-7)", -1},
		{"log(e)", 1},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Eval(tt.in, Env{})
			if err != nil {
				t.Fatalf("Eval(%q) error: %v", tt.in, err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Eval(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestEval_Variables(t *testing.T) {
	env := Env{
		Vars:   map[string]float64{"t": 2},
		Points: map[string][2]float64{"p1": {10, 20}},
	}
	tests := []struct {
		in   string
		want float64
	}{
		{"t*t", 4},
		{"p1[0] + p1[1]", 30},
		{"p1.x * t", 20},
		{"p1.y - t", 18},
		{"(1-t)^3 * p1[0]", -10},
	}
	for _, tt := range tests {
		got, err := Eval(tt.in, env)
		if err != nil {
			t.Fatalf("Eval(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Eval(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"", ErrSyntax},
		{"1+", ErrSyntax},
		{"(1+2", ErrSyntax},
		{"1 2", ErrSyntax},
		{"3 $ 4", ErrSyntax},
		{"sin(1,", ErrSyntax},
		{"alert(1)", ErrUnknownName},
		{"os.Exit(1)", ErrUnknownName},
		{"sin(1, 2)", ErrArity},
		{"min()", ErrArity},
		{"p0[2]", ErrIndex},
		{"p0[t]", ErrIndex},
		{"Math.foo.bar", ErrUnknownName},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := Compile(tt.in)
			if !errors.Is(err, tt.want) {
				t.Errorf("Compile(%q) error = %v, want %v", tt.in, err, tt.want)
			}
		})
	}
}

func TestEval_UnboundNames(t *testing.T) {
	for _, in := range []string{"t", "x + 1", "p3[0]", "p3.y"} {
		e, err := Compile(in)
		if err != nil {
			t.Fatalf("Compile(%q) error: %v", in, err)
		}
		if _, err := e.Eval(Env{}); !errors.Is(err, ErrUnknownName) {
			t.Errorf("Eval(%q) error = %v, want ErrUnknownName", in, err)
		}
	}
}

func TestExpr_String(t *testing.T) {
	const src = "100 + 50*sin(t)"
	e := MustCompile(src)
	if e.String() != src {
		t.Errorf("String() = %q, want %q", e.String(), src)
	}
}

func TestMustCompile_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCompile did not panic on a bad formula")
		}
	}()
	MustCompile("1 +")
}

func TestCompile_UTF8(t *testing.T) {
	if got, err := Eval("t\u00a0+\u20031", Env{Vars: map[string]float64{"t": 2}}); err != nil || got != 3 {
		t.Errorf("Eval with Unicode spaces = %v, %v, want 3", got, err)
	}

	tests := []struct {
		in   string
		want error
		text string
	}{
		{"2 \u2217 t", ErrSyntax, "\u2217"},
		{"\u0105 + 1", ErrUnknownName, "\u0105"},
		{"\u00c4t", ErrUnknownName, "\u00c4t"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := Eval(tt.in, Env{})
			if !errors.Is(err, tt.want) {
				t.Fatalf("Eval(%q) error = %v, want %v", tt.in, err, tt.want)
			}
			if !strings.Contains(err.Error(), tt.text) {
				t.Errorf("Eval(%q) error %q does not name %q", tt.in, err, tt.text)
			}
		})
	}
}
