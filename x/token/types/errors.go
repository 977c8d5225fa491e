package types

import (
	"fmt"

	sdk "github.com/mintgate-chain/mintgate/types"
)

type CodeType = sdk.CodeType

const (
	DefaultCodespace     sdk.CodespaceType = "token"
	CodeInvalidTokenInfo CodeType          = 101
)

func ErrInvalidTokenInfo(codespace sdk.CodespaceType, info fmt.Stringer) sdk.Error {
	return sdk.NewError(codespace, CodeInvalidTokenInfo, "invalid token info: %s", info.String())
}
