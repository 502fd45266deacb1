package postgres

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownProcedure = errors.New("unknown procedure")

// Procedure names are interpolated into CALL statements, so only these constants are accepted.
type Procedure string

const (
	ProcDeposit    Procedure = "sp_deposito"
	ProcWithdrawal Procedure = "sp_retirada"
	ProcBuy        Procedure = "sp_compra"
	ProcSell       Procedure = "sp_venda"
)

var knownProcedures = map[Procedure]struct{}{
	ProcDeposit:    {},
	ProcWithdrawal: {},
	ProcBuy:        {},
	ProcSell:       {},
}

func (p Procedure) Known() bool {
	_, ok := knownProcedures[p]
	return ok
}

func buildCall(proc Procedure, argc int) (string, error) {
	if !proc.Known() {
		return "", fmt.Errorf("%w: %q", ErrUnknownProcedure, string(proc))
	}
	if argc == 0 {
		return fmt.Sprintf("CALL %s()", proc), nil
	}

	placeholders := make([]string, argc)
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("CALL %s(%s)", proc, strings.Join(placeholders, ", ")), nil
}
