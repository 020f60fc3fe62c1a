package entity

import "errors"

var ErrMetricNotReady = errors.New("metric not ready")
