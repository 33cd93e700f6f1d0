package mat

import "testing"

func TestReplicateDims(t *testing.T) {
	tests := []struct {
		name       string
		base       Dims
		rowF, colF int
		want       Dims
	}{
		{"both static", Dims{2, 3}, 2, 4, Dims{4, 12}},
		{"identity factors", Dims{2, 3}, 1, 1, Dims{2, 3}},
		{"dynamic row factor", Dims{2, 3}, Dynamic, 4, Dims{Dynamic, 12}},
		{"dynamic col factor", Dims{2, 3}, 2, Dynamic, Dims{4, Dynamic}},
		{"dynamic base rows", Dims{Dynamic, 3}, 2, 4, Dims{Dynamic, 12}},
		{"dynamic base cols", Dims{2, Dynamic}, 2, 4, Dims{4, Dynamic}},
		{"fully dynamic", Dims{Dynamic, Dynamic}, Dynamic, Dynamic, Dims{Dynamic, Dynamic}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReplicateDims(tt.base, tt.rowF, tt.colF); got != tt.want {
				t.Errorf("ReplicateDims(%v, %d, %d) = %v, want %v",
					tt.base, tt.rowF, tt.colF, got, tt.want)
			}
		})
	}
}

func TestDims_IsStatic(t *testing.T) {
	if !(Dims{2, 3}).IsStatic() {
		t.Error("Dims{2,3} must be static")
	}
	if (Dims{Dynamic, 3}).IsStatic() {
		t.Error("Dims{Dynamic,3} must not be static")
	}
	if (Dims{2, Dynamic}).IsStatic() {
		t.Error("Dims{2,Dynamic} must not be static")
	}
}

func TestDims_String(t *testing.T) {
	tests := []struct {
		dims Dims
		want string
	}{
		{Dims{2, 3}, "2x3"},
		{Dims{Dynamic, 3}, "?x3"},
		{Dims{2, Dynamic}, "2x?"},
		{Dims{Dynamic, Dynamic}, "?x?"},
	}

	for _, tt := range tests {
		if got := tt.dims.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.dims, got, tt.want)
		}
	}
}

func TestHereditaryFlags(t *testing.T) {
	all := FlagRowMajor | FlagAligned | FlagWritable

	got := all & HereditaryFlags
	if got != FlagRowMajor {
		t.Errorf("Hereditary subset of all flags = %b, want %b", got, FlagRowMajor)
	}
	if HereditaryFlags&FlagWritable != 0 {
		t.Error("Writability must not be hereditary across a view")
	}
	if HereditaryFlags&FlagAligned != 0 {
		t.Error("Alignment must not be hereditary across a view")
	}
}
