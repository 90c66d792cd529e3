package main

import (
	"fmt"

	"github.com/aretw0/venvctl/pkg/arrays"
)

func main() {
	fmt.Println(arrays.Sum(12, 3, 4, 15))
}
