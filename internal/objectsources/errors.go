package objectsources

import (
	"fmt"

	"elb-log-reports/internal/shared/svcerrors"
)

const (
	codeSourceListFailed   = "SRC_9000"
	codeSourceReadFailed   = "SRC_9001"
	codeBucketInaccessible = "SRC_9002"
	codeSourceDecodeFailed = "SRC_9003"
)

// errSourceListFailed returns an error when a day partition cannot be listed.
func errSourceListFailed(prefix string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeSourceListFailed, fmt.Sprintf("could not list log objects under %q", prefix), cause)
}

// errSourceReadFailed returns an error when an object cannot be fetched.
func errSourceReadFailed(key string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeSourceReadFailed, fmt.Sprintf("could not read log object %q", key), cause)
}

// errSourceDecodeFailed returns an error when an object is not valid gzip.
func errSourceDecodeFailed(key string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeSourceDecodeFailed, fmt.Sprintf("could not decompress log object %q", key), cause)
}

// errBucketInaccessible returns an error when the bucket (or local root) cannot be opened.
func errBucketInaccessible(bucket string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeBucketInaccessible, fmt.Sprintf("unable to access bucket %q", bucket), cause)
}
