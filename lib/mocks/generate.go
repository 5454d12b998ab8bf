package mocks

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate
//counterfeiter:generate -o=tableutil.recorder.mock.go ../hive/tableutil TableTypeRecorder
//counterfeiter:generate -o=metrics.client.mock.go ../telemetry/metrics/base Client
