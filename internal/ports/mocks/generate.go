//go:generate mockgen -source=../auction_cache.go        -destination=./mock_auction_cache.go        -package=mocks
//go:generate mockgen -source=../bid_publisher.go        -destination=./mock_bid_publisher.go        -package=mocks
//go:generate mockgen -source=../auction_validator.go    -destination=./mock_auction_validator.go    -package=mocks
//go:generate mockgen -source=../logger.go               -destination=./mock_logger.go               -package=mocks
//go:generate mockgen -source=../message_consumer.go     -destination=./mock_message_consumer.go     -package=mocks
//go:generate mockgen -source=../auction_read_service.go -destination=./mock_auction_read_service.go -package=mocks
//go:generate mockgen -source=../bid_placer.go           -destination=./mock_bid_placer.go           -package=mocks

package mocks
