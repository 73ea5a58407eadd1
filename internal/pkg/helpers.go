package pkg

import (
	"math"
	"strconv"
)

func ParseInt(s string) (int, error) {
	return strconv.Atoi(s)
}

// Round arredonda para o número de casas decimais pedido.
// Usado apenas na borda de apresentação; os cálculos internos
// trabalham sempre com valores sem arredondamento.
func Round(value float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(value*shift) / shift
}
