package dispatcher

// Method is an EIP-1193 request method known to the bridge. Every value has
// exactly one handler; methods the bridge declines are still enumerated so
// they fail explicitly instead of falling through.
type Method int

const (
	MethodUnknown Method = iota

	MethodChainID
	MethodNetVersion
	MethodAccounts
	MethodRequestAccounts
	MethodGasPrice
	MethodBlockNumber
	MethodGetBalance
	MethodGetStorageAt
	MethodGetTransactionCount
	MethodGetBlockTransactionCountByHash
	MethodGetBlockTransactionCountByNumber
	MethodGetCode
	MethodCall
	MethodEstimateGas
	MethodEstimateGasLegacy
	MethodGetBlockByHash
	MethodGetBlockByNumber
	MethodSendTransaction
	MethodSendRawTransaction
	MethodGetTransactionByHash
	MethodGetTransactionReceipt
	MethodSign
	MethodSubscribe
	MethodUnsubscribe
	MethodSwitchEthereumChain

	// Declined.
	MethodGetUncleCountByBlockHash
	MethodGetUncleCountByBlockNumber
	MethodGetUncleByBlockHashAndIndex
	MethodGetUncleByBlockNumberAndIndex
	MethodGetTransactionByBlockHashAndIndex
	MethodGetTransactionByBlockNumberAndIndex
	MethodNewFilter
	MethodNewBlockFilter
	MethodNewPendingTransactionFilter
	MethodUninstallFilter
	MethodGetFilterChanges
	MethodGetFilterLogs
	MethodGetLogs

	methodCount
)

var methodNames = [methodCount]string{
	MethodUnknown: "unknown",

	MethodChainID:                          "eth_chainId",
	MethodNetVersion:                       "net_version",
	MethodAccounts:                         "eth_accounts",
	MethodRequestAccounts:                  "eth_requestAccounts",
	MethodGasPrice:                         "eth_gasPrice",
	MethodBlockNumber:                      "eth_blockNumber",
	MethodGetBalance:                       "eth_getBalance",
	MethodGetStorageAt:                     "eth_getStorageAt",
	MethodGetTransactionCount:              "eth_getTransactionCount",
	MethodGetBlockTransactionCountByHash:   "eth_getBlockTransactionCountByHash",
	MethodGetBlockTransactionCountByNumber: "eth_getBlockTransactionCountByNumber",
	MethodGetCode:                          "eth_getCode",
	MethodCall:                             "eth_call",
	MethodEstimateGas:                      "eth_estimateGas",
	MethodEstimateGasLegacy:                "estimateGas",
	MethodGetBlockByHash:                   "eth_getBlockByHash",
	MethodGetBlockByNumber:                 "eth_getBlockByNumber",
	MethodSendTransaction:                  "eth_sendTransaction",
	MethodSendRawTransaction:               "eth_sendRawTransaction",
	MethodGetTransactionByHash:             "eth_getTransactionByHash",
	MethodGetTransactionReceipt:            "eth_getTransactionReceipt",
	MethodSign:                             "eth_sign",
	MethodSubscribe:                        "eth_subscribe",
	MethodUnsubscribe:                      "eth_unsubscribe",
	MethodSwitchEthereumChain:              "wallet_switchEthereumChain",

	MethodGetUncleCountByBlockHash:            "eth_getUncleCountByBlockHash",
	MethodGetUncleCountByBlockNumber:          "eth_getUncleCountByBlockNumber",
	MethodGetUncleByBlockHashAndIndex:         "eth_getUncleByBlockHashAndIndex",
	MethodGetUncleByBlockNumberAndIndex:       "eth_getUncleByBlockNumberAndIndex",
	MethodGetTransactionByBlockHashAndIndex:   "eth_getTransactionByBlockHashAndIndex",
	MethodGetTransactionByBlockNumberAndIndex: "eth_getTransactionByBlockNumberAndIndex",
	MethodNewFilter:                           "eth_newFilter",
	MethodNewBlockFilter:                      "eth_newBlockFilter",
	MethodNewPendingTransactionFilter:         "eth_newPendingTransactionFilter",
	MethodUninstallFilter:                     "eth_uninstallFilter",
	MethodGetFilterChanges:                    "eth_getFilterChanges",
	MethodGetFilterLogs:                       "eth_getFilterLogs",
	MethodGetLogs:                             "eth_getLogs",
}

var methodsByName = func() map[string]Method {
	m := make(map[string]Method, methodCount)
	for i := MethodUnknown + 1; i < methodCount; i++ {
		m[methodNames[i]] = i
	}
	return m
}()

// ParseMethod resolves a wire name. Unknown names map to MethodUnknown.
func ParseMethod(name string) Method {
	return methodsByName[name]
}

func (m Method) String() string {
	if m < 0 || m >= methodCount {
		return methodNames[MethodUnknown]
	}
	return methodNames[m]
}

// Methods returns every known method, MethodUnknown excluded.
func Methods() []Method {
	list := make([]Method, 0, methodCount-1)
	for m := MethodUnknown + 1; m < methodCount; m++ {
		list = append(list, m)
	}
	return list
}
