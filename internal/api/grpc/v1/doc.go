// Package v1 implements the news.v1 gRPC services.
//
// Messages are plain Go structs carried by a JSON codec registered under the
// "json" content subtype, so clients must call with grpc.CallContentSubtype(CodecName)
// (NewsServiceClient and AuthServiceClient do this for every call).
package v1
