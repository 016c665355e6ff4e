package timeslot

import "testing"

func TestLabelMapping(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{16, "4:00pm"},
		{17, "5:00pm"},
		{18, "6:00pm"},
		{19, "7:00pm"},
		{20, "8:00pm"},
		{21, "9:00pm"},
		{22, "10:00pm"},
		{23, "11:00pm"},
		{24, "12:00am"},
		{12, "12:00pm"},
		{9, "9:00am"},
	}
	for _, tc := range cases {
		if got := Label(tc.hour); got != tc.want {
			t.Errorf("Label(%d) = %q, se esperaba %q", tc.hour, got, tc.want)
		}
	}
}

func TestGridSize(t *testing.T) {
	slots := Grid(nil)
	if len(slots) != 9 {
		t.Fatalf("la grilla debe tener 9 slots, tiene %d", len(slots))
	}
	if slots[0].Time != "4:00pm" || slots[8].Time != "12:00am" {
		t.Fatalf("extremos incorrectos: %q .. %q", slots[0].Time, slots[8].Time)
	}
	for _, s := range slots {
		if !s.Available {
			t.Errorf("sin reservas, el slot %q debe estar disponible", s.Time)
		}
	}
}

func TestGridMarksUnavailable(t *testing.T) {
	slots := Grid([]string{"5:00pm", "6:00pm"})
	unavailable := 0
	for _, s := range slots {
		switch s.Time {
		case "5:00pm", "6:00pm":
			if s.Available {
				t.Errorf("el slot %q debería estar ocupado", s.Time)
			}
			unavailable++
		default:
			if !s.Available {
				t.Errorf("el slot %q debería estar disponible", s.Time)
			}
		}
	}
	if unavailable != 2 {
		t.Fatalf("se esperaban 2 slots ocupados, hay %d", unavailable)
	}
}

func TestGridDeterministic(t *testing.T) {
	a := Grid([]string{"8:00pm"})
	b := Grid([]string{"8:00pm"})
	if len(a) != len(b) {
		t.Fatal("grillas de distinto tamaño")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("slot %d difiere entre llamadas: %+v vs %+v", i, a[i], b[i])
		}
	}
}
