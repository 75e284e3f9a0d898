package normalize

import "testing"

func TestName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "Virat", want: "Virat"},
		{name: "trimmed", in: "  Rohit \n", want: "Rohit"},
		{name: "inner space", in: "KL   Rahul", want: "KL Rahul"},
		{name: "tabs", in: "Mark\tWood", want: "Mark Wood"},
		{name: "composed", in: "Émile", want: "Émile"},
		{name: "blank", in: " \t ", want: ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Name(tt.in); got != tt.want {
				t.Errorf("Name(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
