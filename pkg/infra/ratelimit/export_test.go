package ratelimit

var AcquireScriptHash = acquireScript.Hash()
