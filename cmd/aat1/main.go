package main

import (
	"fmt"
	"os"

	sparse "github.com/edp1096/sparse-aat"
)

func main() {
	var err error

	config := sparse.DefaultConfiguration()
	config.PrinterWidth = 140
	config.PrintLevel = sparse.PRINT_ALL

	A, err := sparse.Create(5, &config)
	if err != nil {
		panic(err)
	}

	A.Clear()
	A.GetElement(1, 1).Real += 4
	A.GetElement(1, 2).Real += -2
	A.GetElement(1, 3).Real += 2
	A.GetElement(1, 4).Real += 1
	A.GetElement(1, 5).Real += 5

	A.GetElement(2, 1).Real += 2
	A.GetElement(2, 2).Real += 3
	A.GetElement(2, 3).Real += -1
	A.GetElement(2, 4).Real += 2
	A.GetElement(2, 5).Real += 3

	A.GetElement(3, 2).Real += 1
	A.GetElement(3, 3).Real += 5
	A.GetElement(3, 4).Real += 7
	A.GetElement(3, 5).Real += 2

	A.GetElement(4, 1).Real += 1
	A.GetElement(4, 2).Real += 2
	A.GetElement(4, 4).Real += 4
	A.GetElement(4, 5).Real += 1

	A.GetElement(5, 1).Real += 3
	A.GetElement(5, 2).Real += 1
	A.GetElement(5, 3).Real += 4
	A.GetElement(5, 4).Real += 2
	A.GetElement(5, 5).Real += 2

	A.Print(os.Stdout, true, true)

	C := A.CSC()
	if err = C.Report(os.Stdout, config.PrintLevel); err != nil {
		panic(err)
	}

	logger := sparse.NewLogger("trace", os.Stderr)
	pattern, err := C.AAT(sparse.NewLogTracer(logger, 2))
	if err != nil {
		panic(err)
	}

	pattern.Info.Write(os.Stdout)

	fmt.Println("Column lengths of A+A':")
	for j, l := range pattern.Len {
		fmt.Printf("Len[%d] = %d\n", j+1, l)
	}

	A.Destroy()
}
