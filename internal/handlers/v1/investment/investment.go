package investment

// Investment is the API response model for an investment.
type Investment struct {
	ID             string `json:"id" doc:"Investment UUID"`
	ClientID       string `json:"clientId" doc:"Owning client UUID"`
	InvestmentName string `json:"investmentName" doc:"Name of the investment product"`
	Category       int    `json:"category" doc:"Category: 0=Equities, 1=Bonds, 2=Funds, 3=Real Estate, 4=Cash Deposits, 5=Other"`
	RiskLevel      int    `json:"riskLevel" doc:"Risk level: 0=Low, 1=Medium, 2=High"`
	Status         int    `json:"status" doc:"Status: 0=Active, 1=Sold, 2=Closed"`
	CurrentValue   string `json:"currentValue" doc:"Decimal current value"`
	DateInvested   string `json:"dateInvested" doc:"RFC3339 investment date"`
}
