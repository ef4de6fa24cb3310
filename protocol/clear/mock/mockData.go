package mock_clear

const DepositMockResponse = `
{
	"instructions": [
		{
			"programId": "ComputeBudget111111111111111111111111111111",
			"accounts": [],
			"data": "AsBcFQA="
		}
	],
	"addressLookupTableAddresses": [
		"4sKLJ1Qoudh8PJyqBeuKocYdsZvxTcRShUt9aKqwhgvC"
	],
	"serializedTransaction": "AQAAAA==",
	"quote": {
		"lamports": "1500000000",
		"expectedBitAmount": "1432118211",
		"bin": {
			"address": "7vQdFzz4Ty6yXWvL2Wg5gkJ4GA2XQ7Cc9UHCB1XSNoGP",
			"bitMint": "BiTXT15XyfSakh6x4z6h4XjY5mPEsYbEBK4ySJyTzAPW",
			"tokenSymbol": "bitSOL",
			"currentBvl": "104738114231992",
			"bitRate": "1047381142",
			"activated": true,
			"canActivate": false,
			"depth": 3
		}
	}
}
`

const LabelMockResponse = `
{
	"tokenSymbol": "bitSOL",
	"mint": "BiTXT15XyfSakh6x4z6h4XjY5mPEsYbEBK4ySJyTzAPW",
	"publicKey": "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin",
	"binAddress": "7vQdFzz4Ty6yXWvL2Wg5gkJ4GA2XQ7Cc9UHCB1XSNoGP",
	"yieldPercentage": 7.42,
	"metadata": {
		"name": "Clear Label",
		"symbol": "bitSOL",
		"description": "Automated restaking delegation",
		"image": "https://clearsol.network/label.png"
	}
}
`
