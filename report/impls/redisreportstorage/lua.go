package redisreportstorage

import "github.com/go-redis/redis/v8"

const errReportExists = "report exists"

var addReportScript = redis.NewScript(`
		local reportKey = KEYS[1]
		local otherKindKey = KEYS[2]
		local idsKey = KEYS[3]

		local vID = ARGV[1]
		local vReport = ARGV[2]

		if redis.call('EXISTS', reportKey) == 1 or redis.call('EXISTS', otherKindKey) == 1 then
			return redis.error_reply("report exists")
		end

		redis.call("SET", reportKey, vReport)
		redis.call("SADD", idsKey, vID)

		return 0
	`)
