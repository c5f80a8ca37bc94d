//go:build gorgonia
// +build gorgonia

package compute

import (
	_ "github.com/expki/go-constructsim/env"
	"gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// cosineGram computes the cosine similarity between every pair of rows of
// data (row-major, rows x dim), returning a rows x rows matrix with a single
// graph.
func cosineGram(data []float64, rows, dim int) []float64 {
	dense := tensor.New(tensor.WithBacking(data), tensor.WithShape(rows, dim))

	g := gorgonia.NewGraph()

	// Create a tensor node to hold M (rank=2)
	M := gorgonia.NewTensor(g, tensor.Float64, 2, gorgonia.WithValue(dense), gorgonia.WithName("node1"))

	// Step 1: Dot Product => shape [N, N]
	// M^T: shape [dim, N]
	MT := gorgonia.Must(gorgonia.Transpose(M, 1, 0))
	dot := gorgonia.Must(gorgonia.BatchedMatMul(M, MT))

	// Step 2: Compute row-wise L2 norms of M
	norms, err := rowWiseL2Norm(M) // shape [N]
	if err != nil {
		panic(err)
	}

	// Broadcast norms to get shape [N, N]
	normsCol, err := gorgonia.Reshape(norms, tensor.Shape{rows, 1})
	if err != nil {
		panic(err)
	}
	normsRow, err := gorgonia.Reshape(norms, tensor.Shape{1, rows})
	if err != nil {
		panic(err)
	}

	normsProduct, err := gorgonia.BroadcastHadamardProd(normsCol, normsRow, []byte{1}, []byte{0})
	if err != nil {
		panic(err)
	}

	// Step 3: Cosine similarity = dot / (||M|| * ||M||)
	cosSim, err := gorgonia.HadamardDiv(dot, normsProduct)
	if err != nil {
		panic(err)
	}

	// Build and run the VM
	machine := gorgonia.NewTapeMachine(g)
	err = machine.RunAll()
	if err != nil {
		panic(err)
	}
	machine.Close()

	// Return data. A 1x1 result arrives as a bare scalar.
	switch value := cosSim.Value().Data().(type) {
	case []float64:
		return value
	case float64:
		return []float64{value}
	default:
		panic("unexpected cosine similarity result type")
	}
}

// rowWiseL2Norm computes the row-wise L2-norms for a matrix node [N, D], returning a node of shape [N].
func rowWiseL2Norm(mat *gorgonia.Node) (*gorgonia.Node, error) {
	// square each element
	squared, err := gorgonia.Square(mat)
	if err != nil {
		return nil, err
	}
	// sum across dim=1 (each row)
	rowSums, err := gorgonia.Sum(squared, 1)
	if err != nil {
		return nil, err
	}
	// sqrt the sums -> L2 norms
	norms, err := gorgonia.Sqrt(rowSums)
	if err != nil {
		return nil, err
	}
	return norms, nil
}
