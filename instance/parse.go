package instance

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-logistics/ges-pdptw"
)

// Malformed-input sentinels. Do not wrap with fmt.Errorf where these suffice.
var (
	// ErrMalformedHeader indicates the first line is not "<vehicles> <capacity> <speed>".
	ErrMalformedHeader = errors.New("instance: malformed header line")

	// ErrMalformedRow indicates a node row did not parse as nine whitespace
	// separated fields.
	ErrMalformedRow = errors.New("instance: malformed node row")

	// ErrEmptyFile indicates the reader produced no header line at all.
	ErrEmptyFile = errors.New("instance: empty input")
)

// Header carries the fleet-level fields from a Li & Lim instance's first
// line: vehicle count, per-vehicle capacity, and travel speed (speed is
// parsed but unused — distances in this format are already travel times at
// unit speed once scaled, matching the original benchmark's convention).
type Header struct {
	Vehicles int
	Capacity int32
	Speed    float64
}

// ReadFile opens path and parses it as a Li & Lim PDPTW instance.
func ReadFile(path string) (Header, []ges.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse assumes, as the standard Li & Lim benchmark files do, that each row's
// id equals its 0-based position in the file (row 0 the depot, row i node
// i); pickup_id/delivery_id are therefore usable directly as ges.Node.Pair
// indices without a separate id-to-index lookup pass.
//
// Parse reads a Li & Lim formatted PDPTW instance from r: a header line
// "<vehicles> <capacity> <speed>", then one row per node,
// "id x y demand ready due service pickup_id delivery_id". Row 0 is the
// depot. A node with pickup_id==0 and delivery_id!=0 is a pickup whose
// partner is delivery_id; a node with delivery_id==0 and pickup_id!=0 is a
// delivery whose partner is pickup_id.
func Parse(r io.Reader) (Header, []ges.Node, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !sc.Scan() {
		return Header{}, nil, ErrEmptyFile
	}
	header, err := parseHeader(sc.Text())
	if err != nil {
		return Header{}, nil, err
	}

	var nodes []ges.Node
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		nd, err := parseRow(line)
		if err != nil {
			return Header{}, nil, err
		}
		nodes = append(nodes, nd)
	}
	if err := sc.Err(); err != nil {
		return Header{}, nil, err
	}

	return header, nodes, nil
}

func parseHeader(line string) (Header, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Header{}, ErrMalformedHeader
	}
	vehicles, err := strconv.Atoi(fields[0])
	if err != nil {
		return Header{}, ErrMalformedHeader
	}
	capacity, err := strconv.ParseInt(fields[1], 10, 32)
	if err != nil {
		return Header{}, ErrMalformedHeader
	}
	speed, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Header{}, ErrMalformedHeader
	}
	return Header{Vehicles: vehicles, Capacity: int32(capacity), Speed: speed}, nil
}

func parseRow(line string) (ges.Node, error) {
	fields := strings.Fields(line)
	if len(fields) != 9 {
		return ges.Node{}, ErrMalformedRow
	}

	ints := make([]int64, 9)
	for i, f := range fields {
		if i == 1 || i == 2 {
			continue
		}
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return ges.Node{}, ErrMalformedRow
		}
		ints[i] = v
	}
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return ges.Node{}, ErrMalformedRow
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return ges.Node{}, ErrMalformedRow
	}

	id := int(ints[0])
	demand := int32(ints[3])
	ready := ints[4]
	due := ints[5]
	service := ints[6]
	pickupID := int(ints[7])
	deliveryID := int(ints[8])

	nd := ges.Node{
		ID:      id,
		X:       x,
		Y:       y,
		Demand:  demand,
		Ready:   ready,
		Due:     due,
		Service: service,
	}
	switch {
	case pickupID == 0 && deliveryID != 0:
		nd.IsDelivery = false
		nd.Pair = deliveryID
	case deliveryID == 0 && pickupID != 0:
		nd.IsDelivery = true
		nd.Pair = pickupID
	default:
		// depot: both zero.
		nd.Pair = 0
	}
	return nd, nil
}
