package emissions

// Table mapeia tipo de atividade (minúsculo) para o fator de emissão
// em kg CO2e por unidade (km, kg ou kWh conforme a categoria).
type Table map[string]float64

// Catalog agrupa as três tabelas de fatores do sistema.
type Catalog struct {
	Transport Table
	Food      Table
	Energy    Table
}

// DefaultFactors são médias representativas; as fontes variam.
// Imutável em runtime — overrides chegam por parâmetro nas chamadas.
var DefaultFactors = Catalog{
	Transport: Table{
		"car":    0.17, // carro médio (gasolina) por km
		"bus":    0.08, // ônibus por km por passageiro
		"train":  0.03, // trem por km por passageiro
		"flight": 0.24, // voo de curta distância por km por passageiro
	},
	Food: Table{
		"beef":       27.0,
		"chicken":    6.9,
		"dairy":      1.9, // laticínios mistos
		"vegetables": 0.4,
		"rice":       2.7,
	},
	Energy: Table{
		"electricity": 0.45, // depende da matriz elétrica
		"gas":         0.18,
	},
}
