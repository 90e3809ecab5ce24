package report

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/hupe1980/pkmeans"
	"github.com/hupe1980/pkmeans/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture() (*pkmeans.Result, []*pkmeans.Point) {
	points := []*pkmeans.Point{
		pkmeans.NewPoint(0, []float64{1, 0.5}, "alpha"),
		pkmeans.NewPoint(1, []float64{2, 1.5}, ""),
		pkmeans.NewPoint(2, []float64{9, 9}, "gamma"),
	}
	res := &pkmeans.Result{
		Iterations:   3,
		State:        pkmeans.StateConverged,
		InitDuration: 12 * time.Microsecond,
		LoopDuration: 1500 * time.Microsecond,
		Clusters: []pkmeans.ClusterSnapshot{
			{ID: 0, Centroid: []float64{1.5, 1}, Members: []int{0, 1}},
			{ID: 1, Centroid: []float64{9, 9}, Members: []int{2}},
		},
	}
	return res, points
}

func TestWrite(t *testing.T) {
	res, points := fixture()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, res, points))

	want := `Break in iteration 3

Cluster 1
Point 1: 1 0.5 - alpha
Point 2: 2 1.5
Cluster values: 1.5 1

Cluster 2
Point 3: 9 9 - gamma
Cluster values: 9 9

TOTAL EXECUTION TIME = 1512
TIME PHASE 1 = 12
TIME PHASE 2 = 1500
`
	assert.Equal(t, want, buf.String())
}

func TestWriteTimings(t *testing.T) {
	res, _ := fixture()

	var buf bytes.Buffer
	require.NoError(t, WriteTimings(&buf, res))

	want := `Break in iteration 3
TOTAL EXECUTION TIME = 1512
TIME PHASE 1 = 12
TIME PHASE 2 = 1500
`
	assert.Equal(t, want, buf.String())
}

func TestExportLoad(t *testing.T) {
	res, points := fixture()

	for _, c := range []codec.Codec{codec.JSON{}, codec.GoJSON{}} {
		for _, comp := range []CompressionType{CompressionNone, CompressionLZ4, CompressionZSTD} {
			t.Run(c.Name()+"/"+comp.String(), func(t *testing.T) {
				var buf bytes.Buffer
				require.NoError(t, Export(&buf, res, points, WithCodec(c), WithCompression(comp)))

				doc, err := Load(&buf)
				require.NoError(t, err)

				assert.Equal(t, 3, doc.Iterations)
				assert.True(t, doc.Converged)
				assert.Equal(t, "Converged", doc.State)
				assert.Equal(t, int64(12), doc.InitMicros)
				require.Len(t, doc.Clusters, 2)
				assert.Equal(t, []float64{1.5, 1}, doc.Clusters[0].Centroid)
				assert.Equal(t, []MemberDoc{
					{ID: 0, Label: "alpha", Coords: []float64{1, 0.5}},
					{ID: 1, Coords: []float64{2, 1.5}},
				}, doc.Clusters[0].Members)
			})
		}
	}
}

func TestExport_HeaderNamesCodec(t *testing.T) {
	res, points := fixture()

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, res, points, WithCodec(codec.JSON{})))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("json\n{")))
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(bytes.NewReader([]byte("msgpack\n{}")))
	assert.ErrorIs(t, err, ErrUnknownCodec)

	_, err = Load(bytes.NewReader([]byte("{}")))
	assert.ErrorIs(t, err, ErrUnknownCodec)

	_, err = Load(bytes.NewReader([]byte("json\n{not json")))
	assert.Error(t, err)
}

func TestCompression(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want CompressionType
	}{
		{"", CompressionNone},
		{"none", CompressionNone},
		{"LZ4", CompressionLZ4},
		{"zstd", CompressionZSTD},
	} {
		got, err := ParseCompression(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseCompression("gzip")
	assert.Error(t, err)

	assert.Equal(t, CompressionLZ4, CompressionForPath("out/result.json.lz4"))
	assert.Equal(t, CompressionZSTD, CompressionForPath("result.zst"))
	assert.Equal(t, CompressionNone, CompressionForPath("result.json"))
	assert.Equal(t, "Unknown(9)", CompressionType(9).String())
}

func TestWrite_EngineResult(t *testing.T) {
	points := []*pkmeans.Point{
		pkmeans.NewPoint(0, []float64{1}, "a"),
		pkmeans.NewPoint(1, []float64{2}, "b"),
		pkmeans.NewPoint(2, []float64{9}, "c"),
		pkmeans.NewPoint(3, []float64{10}, "d"),
	}
	e, err := pkmeans.New(2, pkmeans.WithSeed(79))
	require.NoError(t, err)
	res, err := e.Run(context.Background(), points)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, res, points))

	out := buf.String()
	assert.Contains(t, out, "Cluster 1\n")
	assert.Contains(t, out, "Cluster 2\n")
	assert.Contains(t, out, "Point 4: 10 - d\n")
	assert.Contains(t, out, "Cluster values: 9.5\n")
	assert.Contains(t, out, "Cluster values: 1.5\n")
}
