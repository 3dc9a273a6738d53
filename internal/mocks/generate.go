package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name SnapshotRepository --dir ../domain/team --output domain/team --outpkg teammock --filename snapshot_repository_mock.go
