package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCluster struct {
	ID       int       `json:"id"`
	Centroid []float64 `json:"centroid"`
	Members  []int     `json:"members"`
}

func TestByName(t *testing.T) {
	for _, name := range []string{"json", "go-json"} {
		c, ok := ByName(name)
		require.True(t, ok)
		assert.Equal(t, name, c.Name())
	}

	_, ok := ByName("msgpack")
	assert.False(t, ok)
}

func TestNames(t *testing.T) {
	assert.Equal(t, "json, go-json", Names())
}

func TestCodecs_Interchangeable(t *testing.T) {
	in := testCluster{ID: 2, Centroid: []float64{1.5, -0.25}, Members: []int{0, 3, 9}}

	for _, enc := range []Codec{JSON{}, GoJSON{}} {
		for _, dec := range []Codec{JSON{}, GoJSON{}} {
			t.Run(enc.Name()+"->"+dec.Name(), func(t *testing.T) {
				var out testCluster
				require.NoError(t, dec.Unmarshal(MustMarshal(enc, in), &out))
				assert.Equal(t, in, out)
			})
		}
	}
}

func TestMustMarshal_Default(t *testing.T) {
	assert.JSONEq(t, `{"id":1,"centroid":[2],"members":null}`, string(MustMarshal(nil, testCluster{ID: 1, Centroid: []float64{2}})))
}

func TestMustMarshal_Panics(t *testing.T) {
	assert.Panics(t, func() { MustMarshal(JSON{}, make(chan int)) })
}
