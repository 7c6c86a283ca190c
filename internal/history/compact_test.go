package history

import (
	"testing"
	"time"
)

var compactTests = map[*([]Input)]([]InputsCompact){
	{}: {},
	{{Lane: 0, Time: 100}, {Lane: 3, Time: 200}}: {
		{Lane: 0, Times: []time.Duration{100}},
		{Lane: 1, Times: []time.Duration{}},
		{Lane: 2, Times: []time.Duration{}},
		{Lane: 3, Times: []time.Duration{200}},
	},
	{{Lane: 1, Time: 2}, {Lane: 1, Time: 1}}: {
		{Lane: 0, Times: []time.Duration{}},
		{Lane: 1, Times: []time.Duration{2, 1}},
	},
}

func TestCompactInputs(t *testing.T) {
	equal := func(p, q []InputsCompact) bool {
		if len(p) != len(q) {
			return false
		}
		for i := 0; i < len(p); i++ {
			pi, qi := p[i], q[i]
			if pi.Lane != qi.Lane {
				return false
			}
			if len(pi.Times) != len(qi.Times) {
				return false
			}
			for j := 0; j < len(pi.Times); j++ {
				if pi.Times[j] != qi.Times[j] {
					return false
				}
			}
		}
		return true
	}

	for in, expected := range compactTests {
		out := compactInputs(*in)
		if !equal(out, expected) {
			t.Log("out     ", out)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

func TestUncompactInputs(t *testing.T) {
	for expected, in := range compactTests {
		out := uncompactInputs(in)
		// Uncompacting groups presses by lane, so compare as per lane multisets
		if len(out) != len(*expected) {
			t.Log("in      ", in)
			t.Log("expected", *expected)
			t.Fail()
			continue
		}
		seen := map[Input]int{}
		for _, i := range out {
			seen[i]++
		}
		for _, i := range *expected {
			seen[i]--
		}
		for input, n := range seen {
			if n != 0 {
				t.Log("mismatch", input, n)
				t.Fail()
			}
		}
	}
}

func TestTiedInputsReplayInLaneOrder(t *testing.T) {
	in := []Input{{Lane: 2, Time: 50}, {Lane: 0, Time: 50}, {Lane: 1, Time: 10}}
	out := uncompactInputs(compactInputs(in))
	sortInputs(out)
	expected := []Input{{Lane: 1, Time: 10}, {Lane: 0, Time: 50}, {Lane: 2, Time: 50}}
	for i := range expected {
		if out[i] != expected[i] {
			t.Log("out     ", out)
			t.Log("expected", expected)
			t.Fail()
			return
		}
	}
}
