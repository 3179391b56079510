package phase

import "testing"

func TestLadderOrder(t *testing.T) {
	want := []Phase{
		"Beginner", "Basic", "Pre-intermediate", "Intermediate",
		"Upper-intermediate", "Advance", "Master", "Champ",
	}
	got := All()
	if len(got) != len(want) {
		t.Fatalf("len(All()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("All()[%d] = %q, want %q", i, got[i], want[i])
		}
		if Index(want[i]) != i {
			t.Errorf("Index(%q) = %d, want %d", want[i], Index(want[i]), i)
		}
	}
}

func TestLadderNoDuplicates(t *testing.T) {
	seen := make(map[Phase]bool)
	for _, p := range All() {
		if seen[p] {
			t.Fatalf("duplicate phase %q", p)
		}
		seen[p] = true
	}
}

func TestAllReturnsCopy(t *testing.T) {
	a := All()
	a[0] = "Mutated"
	if All()[0] != Beginner {
		t.Fatal("All() exposed the underlying ladder")
	}
}

func TestNext_WalksLadderThenStaysAtChamp(t *testing.T) {
	p := First()
	visited := []Phase{p}
	for i := 0; i < Len+3; i++ {
		next, advanced := Next(p)
		if IsTerminal(p) {
			if advanced || next != Champ {
				t.Fatalf("Next(Champ) = (%q, %v), want (Champ, false)", next, advanced)
			}
			continue
		}
		if !advanced {
			t.Fatalf("Next(%q) did not advance", p)
		}
		if Index(next) != Index(p)+1 {
			t.Fatalf("Next(%q) = %q skipped a rung", p, next)
		}
		p = next
		visited = append(visited, p)
	}
	if len(visited) != Len {
		t.Fatalf("visited %d phases, want %d", len(visited), Len)
	}
}

func TestNext_Invalid(t *testing.T) {
	next, ok := Next("Guru")
	if ok || next != "" {
		t.Errorf("Next(invalid) = (%q, %v), want (\"\", false)", next, ok)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Phase
		wantErr bool
	}{
		{"Beginner", Beginner, false},
		{"beginner", Beginner, false},
		{"  champ ", Champ, false},
		{"upper intermediate", UpperIntermediate, false},
		{"PRE_INTERMEDIATE", PreIntermediate, false},
		{"Advance", Advance, false},
		{"advanced", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidAndTerminal(t *testing.T) {
	if !Valid(Master) {
		t.Error("Master should be valid")
	}
	if Valid("master") {
		t.Error("phase names are case-sensitive for Valid")
	}
	if IsTerminal(Master) {
		t.Error("Master is not terminal")
	}
	if !IsTerminal(Champ) {
		t.Error("Champ is terminal")
	}
}
