package gamification

// Constantes de pontuação
const (
	// DailyCarbonGoalKg é o teto para nota zero: 0 kg vale 100 pontos,
	// DailyCarbonGoalKg ou mais vale 0.
	DailyCarbonGoalKg = 20.0
)

// streakBonusMilestones dá bônus apenas no dia exato do marco.
// Um streak de 10 dias não ganha bônus — comportamento herdado do
// produto, mantido até decisão em contrário.
var streakBonusMilestones = map[int]int{
	3: 50,
	7: 150,
}

type Level struct {
	Threshold int
	Name      string
}

// levels em ordem ascendente de pontos; nunca mutado em runtime.
var levels = []Level{
	{0, "Seedling"},
	{500, "Sapling"},
	{1500, "Oak"},
	{3000, "Forest Guardian"},
	{5000, "Planet Hero"},
}

// Badge é o formato devolvido pela API.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// badgeDefinition declara os limites que a conquista exige. Campos nil
// não participam da checagem; uma definição sem limites sempre qualifica.
type badgeDefinition struct {
	Badge
	TransportMax *float64
	MinStreak    *int
	EnergyMax    *float64
}

// badgeCatalog na ordem de declaração — a ordem de retorno segue esta.
// Os IDs são estáveis porque clientes podem armazená-los.
var badgeCatalog = []badgeDefinition{
	{
		Badge:        Badge{ID: "green_traveler", Name: "Green Traveler", Description: "Transport footprint below 5kg."},
		TransportMax: floatPtr(5.0),
	},
	{
		Badge:     Badge{ID: "eco_warrior", Name: "Eco Warrior", Description: "Maintain a 7-day activity streak."},
		MinStreak: intPtr(7),
	},
	{
		Badge:     Badge{ID: "low_utility", Name: "Energy Saver", Description: "Reduce daily energy use below 10kWh."},
		EnergyMax: floatPtr(10.0),
	},
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
