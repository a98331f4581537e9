package service

const (
	MonthsInYear     = 12
	BalanceTolerance = 0.01 // saldo residual considerado pagado

	cacheKeyPrefix = "calc"
)
