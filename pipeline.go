package bounds

import "sync"

// task runs fn over data split in contiguous chunks, one goroutine per chunk
func task[T any](workersCount int, data []T, fn func(data T)) {
	var wg sync.WaitGroup
	dataSize := len(data)
	chunkSize := (dataSize + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		start := min(workerID*chunkSize, dataSize)
		end := min((workerID+1)*chunkSize, dataSize)
		if start == end {
			continue
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(data[i])
			}
		}(start, end)
	}
	wg.Wait()
}
