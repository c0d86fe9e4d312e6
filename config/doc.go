// Copyright 2021 The servicex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package config loads the settings of a servicex client program and
builds its logger.

Settings are read, in increasing order of precedence, from built-in
defaults, an optional YAML file, an optional .env file and environment
variables prefixed with SERVICEX_. Nested keys are joined with an
underscore, so service.host is set by SERVICEX_SERVICE_HOST:

	service:
	  scheme: https
	  host: wikia.com
	  timeout: 10s
	  cache_policy: ReturnCacheDataElseLoad
	log:
	  level: info
	  format: console
*/
package config
